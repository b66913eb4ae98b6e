package sqlinline

const QListPrograms = `--sql b4a2fdbd-ae9a-4213-a280-0c6b07bc5a1b
select
  id,
  title,
  category,
  description,
  date,
  coalesce(location, ''),
  funding_goal::text,
  status,
  created_at,
  updated_at
from programs
where ($1::text = '' or category = $1::text)
  and ($2::text = '' or status = $2::text)
order by date desc, created_at desc
limit case when $3::int > 0 then $3::int end;
`

const QSelectProgram = `--sql 3f2b367f-0d8c-4e29-b36d-bc18dfc69254
select
  id,
  title,
  category,
  description,
  date,
  coalesce(location, ''),
  funding_goal::text,
  status,
  created_at,
  updated_at
from programs
where id = $1::uuid
limit 1;
`

const QInsertProgram = `--sql befad5c0-b34a-415c-b80c-7e26b37a3948
insert into programs(title, category, description, date, location, funding_goal, status, created_at, updated_at)
values ($1::text, $2::text, $3::text, $4::date, nullif($5::text, ''), $6::numeric, $7::text, now(), now())
returning id, created_at, updated_at;
`

const QUpdateProgram = `--sql 2ff79b73-c287-43e2-9890-a49c5818fa68
update programs
set title = $2::text,
    category = $3::text,
    description = $4::text,
    date = $5::date,
    location = nullif($6::text, ''),
    funding_goal = $7::numeric,
    status = $8::text,
    updated_at = now()
where id = $1::uuid
returning created_at, updated_at;
`

const QDeleteProgram = `--sql 7733670f-f313-4e59-ad78-d9456985be16
delete from programs
where id = $1::uuid;
`

const QListProgramImages = `--sql bba3214f-bc3c-42ab-97e2-d5d35caf1549
select id, program_id, image_url, display_order, created_at
from program_images
where program_id = $1::uuid
order by display_order asc, created_at asc;
`

const QSelectProgramImage = `--sql 13d45756-732d-4879-bef0-8136bd148283
select id, program_id, image_url, display_order, created_at
from program_images
where id = $1::uuid
limit 1;
`

const QInsertProgramImage = `--sql c8f3acc8-acfa-4362-8923-3376c0458634
insert into program_images(program_id, image_url, display_order, created_at)
values ($1::uuid, $2::text, $3::int, now())
returning id, created_at;
`

const QDeleteProgramImage = `--sql 16315918-abff-4ac9-90a3-d442cb573f05
delete from program_images
where id = $1::uuid;
`

const QNextGalleryOrder = `--sql 89480845-cfb5-4758-a57d-36e370284e45
select coalesce(max(display_order), 0) + 1
from program_images
where program_id = $1::uuid
  and display_order > 0;
`
