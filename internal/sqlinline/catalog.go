package sqlinline

const QListCategories = `--sql 84dbd16f-03aa-4f80-8efc-a54ac7629b65
select c.id, c.program_id, p.title, c.name, c.created_at
from donation_categories c
join programs p on p.id = c.program_id
where ($1::text = '' or c.program_id::text = $1::text)
order by c.name asc, c.created_at asc;
`

const QSelectCategory = `--sql fe821349-7712-4591-a02f-33645ba62d6d
select c.id, c.program_id, p.title, c.name, c.created_at
from donation_categories c
join programs p on p.id = c.program_id
where c.id = $1::uuid
limit 1;
`

const QInsertCategory = `--sql 1eecda50-6215-4a4c-afd1-3ec842fb7238
insert into donation_categories(program_id, name, created_at)
values ($1::uuid, $2::text, now())
returning id, created_at;
`

const QDeleteCategory = `--sql 55d5aeab-7c1e-4d34-9bfa-58287fe36d6a
delete from donation_categories
where id = $1::uuid;
`

const QListGoodsItems = `--sql 9c9575cf-ee1a-4f9c-abb6-1af5a1aea064
select g.id, g.category_id, c.name, g.name, coalesce(g.required_quantity, ''), g.created_at
from goods_items g
join donation_categories c on c.id = g.category_id
where ($1::text = '' or g.category_id::text = $1::text)
order by g.name asc;
`

const QInsertGoodsItem = `--sql e50dd032-775a-42af-90a3-d66560285a16
insert into goods_items(category_id, name, required_quantity, created_at)
values ($1::uuid, $2::text, nullif($3::text, ''), now())
returning id, created_at;
`

const QUpdateGoodsItem = `--sql 01b4bad9-1a03-4fc5-820f-16390a676b86
update goods_items
set name = $2::text,
    required_quantity = nullif($3::text, '')
where id = $1::uuid
returning category_id, created_at;
`

const QDeleteGoodsItem = `--sql d574cc27-d663-426b-a897-353e067df8ad
delete from goods_items
where id = $1::uuid;
`

const QListRequirements = `--sql 9d0f1abe-9b16-4b61-ae3d-34d7b325820c
select r.id, r.program_id, r.goods_item_id, g.name, c.name, r.required_quantity, r.created_at
from program_goods_requirements r
join goods_items g on g.id = r.goods_item_id
join donation_categories c on c.id = g.category_id
where r.program_id = $1::uuid
order by g.name asc;
`

const QUpsertRequirement = `--sql af230579-84fd-4428-a286-142aeee4cb2b
insert into program_goods_requirements(program_id, goods_item_id, required_quantity, created_at)
values ($1::uuid, $2::uuid, $3::text, now())
on conflict (program_id, goods_item_id) do update set
  required_quantity = excluded.required_quantity
returning id, created_at;
`

const QDeleteRequirement = `--sql b2d3ace6-c143-4daa-b1b8-8a87d0eecf3d
delete from program_goods_requirements
where id = $1::uuid;
`

const QRequiredItemsForProgram = `--sql 485a316a-972e-4c50-b504-5b202a9c662f
select g.id, g.name, coalesce(r.required_quantity, g.required_quantity, '') as required_quantity
from goods_items g
left join donation_categories c on c.id = g.category_id and c.program_id = $1::uuid
left join program_goods_requirements r on r.goods_item_id = g.id and r.program_id = $1::uuid
where (c.id is not null or r.id is not null)
  and coalesce(r.required_quantity, g.required_quantity, '') <> ''
order by g.name asc, g.id asc;
`
